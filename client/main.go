package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"VoxelForge/client/internal/app"
	"VoxelForge/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando (sobrescrevem o config salvo)
	generator := flag.String("gen", "", "Gerador de mundo: sphere ou perlin")
	seed := flag.Int64("seed", 0, "Semente do gerador perlin")
	radius := flag.Int("radius", -1, "Raio do mundo em chunks")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Log em arquivo, com fallback silencioso para stderr
	f, err := os.OpenFile("voxelforge.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(f)
	}
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("--- INICIANDO VOXELFORGE ---")

	cfg := config.Load()

	if *generator != "" {
		cfg.Generator = *generator
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *radius >= 0 {
		cfg.WorldRadius = int32(*radius)
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	application := app.New(cfg)
	application.Run()
}
