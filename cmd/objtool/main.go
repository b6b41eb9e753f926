// objtool inspects and rewrites Wavefront OBJ models.
package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "roundtrip", "rt":
		cmdRoundTrip(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - Wavefront OBJ utility

Usage:
  objtool <command> [options]

Commands:
  info <file.obj>...               Show attribute counts, dedup ratio and bounds
  roundtrip <in.obj> <out.obj>     Parse and rewrite a model, then verify it

Examples:
  objtool info media/bunny.obj
  objtool roundtrip media/cabin.obj /tmp/cabin.obj`)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info <file.obj>...")
		os.Exit(1)
	}

	for i, path := range args {
		if i > 0 {
			fmt.Println()
		}
		obj, err := formats.ParseOBJFile(path)
		if err != nil {
			fail(err)
		}
		mesh, err := model.BuildMesh(obj)
		if err != nil {
			fail(err)
		}

		corners := len(obj.Faces) * 3
		fmt.Printf("File:       %s\n", path)
		fmt.Printf("Positions:  %d\n", len(obj.Positions))
		fmt.Printf("TexCoords:  %d\n", len(obj.TexCoords))
		fmt.Printf("Normals:    %d\n", len(obj.Normals))
		fmt.Printf("Triangles:  %d\n", len(obj.Faces))
		fmt.Printf("Vertices:   %d unique of %d corners", mesh.VertexCount(), corners)
		if corners > 0 {
			fmt.Printf(" (%.1f%% shared)", 100*(1-float64(mesh.VertexCount())/float64(corners)))
		}
		fmt.Println()

		b := mesh.Bounds()
		if b.Empty() {
			fmt.Println("Bounds:     empty")
			continue
		}
		size, center := b.Size(), b.Center()
		fmt.Printf("Bounds:     min (%g, %g, %g) max (%g, %g, %g)\n",
			b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
		fmt.Printf("Size:       %g x %g x %g\n", size[0], size[1], size[2])
		fmt.Printf("Center:     (%g, %g, %g)\n", center[0], center[1], center[2])
	}
}

func cmdRoundTrip(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: objtool roundtrip <in.obj> <out.obj>")
		os.Exit(1)
	}

	in, err := formats.ParseOBJFile(args[0])
	if err != nil {
		fail(err)
	}
	if err := formats.WriteOBJFile(args[1], in); err != nil {
		fail(err)
	}
	out, err := formats.ParseOBJFile(args[1])
	if err != nil {
		fail(err)
	}

	if err := compare(in, out); err != nil {
		fail(fmt.Errorf("round trip mismatch: %w", err))
	}
	fmt.Printf("Wrote %s: %d positions, %d texcoords, %d normals, %d triangles\n",
		args[1], len(out.Positions), len(out.TexCoords), len(out.Normals), len(out.Faces))
}

func compare(a, b *formats.OBJ) error {
	return multierr.Combine(
		diff("position", a.Positions, b.Positions),
		diff("texcoord", a.TexCoords, b.TexCoords),
		diff("normal", a.Normals, b.Normals),
		diff("face", a.Faces, b.Faces),
	)
}

// diff reports a count mismatch or the first differing record, numbered
// from 1 as in the file.
func diff[T comparable](name string, a, b []T) error {
	if len(a) != len(b) {
		return fmt.Errorf("%s count %d != %d", name, len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("%s %d: %v != %v", name, i+1, a[i], b[i])
		}
	}
	return nil
}
