package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tilemesh/tilemesh"
	"github.com/tilemesh/tilemesh/gltf"
	"github.com/tilemesh/tilemesh/worldgen"
)

func main() {
	confPath := flag.String("config", "config.toml", "path of the TOML configuration file, created if absent")
	out := flag.String("out", "board.gltf", "path of the exported glTF document")
	dimmed := flag.Bool("dimmed", false, "render the board in explored (fog of war) colours")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*confPath, *out, *dimmed, log); err != nil {
		log.Error("tilemesh failed", "error", err)
		os.Exit(1)
	}
}

func run(confPath, out string, dimmed bool, log *slog.Logger) error {
	uc, err := tilemesh.LoadUserConfig(confPath)
	if err != nil {
		return err
	}
	if uc.World.Width <= 0 || uc.World.Depth <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", uc.World.Width, uc.World.Depth)
	}

	mesher, err := uc.Config(log).New()
	if err != nil {
		return err
	}
	defer mesher.Close()

	tiles := worldgen.New(mesher.Seed()).Board(uc.World.Width, uc.World.Depth)
	buffers, heights, err := mesher.Mesh(tiles, dimmed)
	if err != nil {
		return err
	}
	log.Info("board meshed", "tiles", len(tiles), "columns", heights.Len(), "blocks", buffers.Count, "seed", mesher.Seed())

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := gltf.Write(f, buffers, "board"); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("board exported", "path", out)
	return nil
}
