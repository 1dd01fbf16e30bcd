package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// Runs the CLI twice over the same descriptor and verifies the output
// trees hash identically.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "determinism check failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK: generation is byte-identical across runs")
}

func run() error {
	if len(os.Args) != 2 {
		return fmt.Errorf("usage: determinism_ci <descriptor>")
	}
	descriptor := os.Args[1]

	projectRoot, err := os.Getwd()
	if err != nil {
		return err
	}

	var baseline string
	for i := 0; i < 2; i++ {
		outDir, err := os.MkdirTemp("", "formsmith-determinism-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(outDir)

		cmd := exec.Command("go", "run", "./cmd/formsmith", "generate", "-out", outDir, descriptor)
		cmd.Dir = projectRoot
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}

		h, err := hashTree(outDir)
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		if i == 0 {
			baseline = h
			continue
		}
		if h != baseline {
			return fmt.Errorf("run %d diverged: baseline=%s current=%s", i+1, baseline, h)
		}
	}
	return nil
}

func hashTree(root string) (string, error) {
	var files []string
	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	}); err != nil {
		return "", err
	}
	sort.Strings(files)

	sum := sha256.New()
	for _, rel := range files {
		sum.Write([]byte(rel))
		sum.Write([]byte{0})
		data, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			return "", err
		}
		sum.Write(data)
		sum.Write([]byte{0})
	}
	return hex.EncodeToString(sum.Sum(nil)), nil
}
