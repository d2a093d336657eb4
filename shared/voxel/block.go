package voxel

import "fmt"

// BlockDescriptor é a definição autoritativa de um tipo de bloco: nome,
// flags de opacidade e as texturas de cada face. Imutável após registrado.
type BlockDescriptor struct {
	Name        string
	Invisible   bool
	Transparent bool

	TopTexture    string
	BottomTexture string
	// SideTextures segue o mapeamento fixo do mesher:
	// [0] = -Z, [1] = -X, [2] = +Z, [3] = +X.
	SideTextures [4]string
}

// Block é a projeção leve de um BlockDescriptor armazenada em cada célula.
// As flags são cópias do descritor para que o caminho quente do mesher não
// precise consultar o registro; elas nunca são alteradas de forma independente.
type Block struct {
	ID          uint32
	Invisible   bool
	Transparent bool
}

// Air é o bloco com que todo chunk nasce preenchido.
var Air = Block{ID: 0, Invisible: true, Transparent: true}

// BlockRegistry mapeia nomes de blocos para ids inteiros densos e vice-versa.
// Ids são atribuídos monotonicamente a partir de 0; remoção não é suportada.
type BlockRegistry struct {
	keys   map[string]uint32
	blocks map[uint32]BlockDescriptor
}

// NewBlockRegistry cria um registro vazio.
func NewBlockRegistry() *BlockRegistry {
	return &BlockRegistry{
		keys:   make(map[string]uint32),
		blocks: make(map[uint32]BlockDescriptor),
	}
}

// AddBlock registra um descritor sob o próximo id livre e retorna esse id.
func (r *BlockRegistry) AddBlock(desc BlockDescriptor) uint32 {
	next := uint32(0)
	for _, id := range r.keys {
		if id+1 > next {
			next = id + 1
		}
	}
	r.keys[desc.Name] = next
	r.blocks[next] = desc
	return next
}

// ByName retorna o descritor registrado sob o nome informado.
// Um nome desconhecido é erro de uso do chamador, não condição de runtime.
func (r *BlockRegistry) ByName(name string) BlockDescriptor {
	id, ok := r.keys[name]
	if !ok {
		panic(fmt.Sprintf("voxel: bloco %q não registrado", name))
	}
	return r.blocks[id]
}

// ByID retorna o descritor registrado sob o id informado. Mesmo contrato do ByName.
func (r *BlockRegistry) ByID(id uint32) BlockDescriptor {
	desc, ok := r.blocks[id]
	if !ok {
		panic(fmt.Sprintf("voxel: id de bloco %d não registrado", id))
	}
	return desc
}

// Instantiate produz o Block leve usado pelo armazenamento do chunk.
func (r *BlockRegistry) Instantiate(name string) Block {
	id, ok := r.keys[name]
	if !ok {
		panic(fmt.Sprintf("voxel: bloco %q não registrado", name))
	}
	desc := r.blocks[id]
	return Block{
		ID:          id,
		Invisible:   desc.Invisible,
		Transparent: desc.Transparent,
	}
}

// Len retorna quantos blocos estão registrados.
func (r *BlockRegistry) Len() int {
	return len(r.blocks)
}

// TextureNames retorna, sem repetição, todos os nomes de textura citados
// pelos descritores registrados — a lista que o atlas precisa empacotar.
func (r *BlockRegistry) TextureNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for id := uint32(0); id < uint32(len(r.blocks)); id++ {
		desc := r.blocks[id]
		add(desc.TopTexture)
		add(desc.BottomTexture)
		for _, s := range desc.SideTextures {
			add(s)
		}
	}
	return names
}

// RegisterDefaultBlocks registra o conjunto básico de blocos na ordem
// canônica: air=0, grass=1, dirt=2, stone=3.
func RegisterDefaultBlocks(r *BlockRegistry) {
	r.AddBlock(BlockDescriptor{
		Name:        "air",
		Invisible:   true,
		Transparent: true,
	})
	r.AddBlock(BlockDescriptor{
		Name:          "grass",
		TopTexture:    "grass_top",
		BottomTexture: "dirt",
		SideTextures:  [4]string{"grass_side", "grass_side", "grass_side", "grass_side"},
	})
	r.AddBlock(BlockDescriptor{
		Name:          "dirt",
		TopTexture:    "dirt",
		BottomTexture: "dirt",
		SideTextures:  [4]string{"dirt", "dirt", "dirt", "dirt"},
	})
	r.AddBlock(BlockDescriptor{
		Name:          "stone",
		TopTexture:    "stone",
		BottomTexture: "stone",
		SideTextures:  [4]string{"stone", "stone", "stone", "stone"},
	})
}
