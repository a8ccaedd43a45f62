package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/edgebreak/mesh/compress"
	"github.com/edgebreak/mesh/decompress"
	"github.com/edgebreak/mesh/halfedge"
	"github.com/edgebreak/mesh/history"
	"github.com/edgebreak/mesh/internal/logging"
	"github.com/edgebreak/mesh/objfile"
	"github.com/edgebreak/mesh/sidetable"
)

func newLogger(v *viper.Viper) (*logging.Logger, error) {
	if v.GetBool("verbose") {
		return logging.New(true)
	}
	return logging.New(false)
}

func newCompressCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "compress",
		Short: "Compress a mesh's connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(v)
		},
	}
}

func runCompress(v *viper.Viper) error {
	log, err := newLogger(v)
	if err != nil {
		return err
	}
	defer log.Sync()

	in, err := openInput(v.GetString("input"))
	if err != nil {
		return err
	}
	defer in.Close()

	parsed, err := objfile.Read(in, log)
	if err != nil {
		return err
	}

	mesh, err := halfedge.Build(len(parsed.Mesh.Vertices), parsed.Mesh.Faces)
	if err != nil {
		return err
	}

	log.Infow("built half-edge mesh", "vertices", mesh.VertexCount, "triangles", mesh.TriangleCount)

	result, err := compress.Compress(mesh)
	if err != nil {
		return err
	}

	b64, pad := history.Encode(result.History)
	entries := sidetable.Build(result)

	reordered := make([][3]float64, len(result.Previous))
	for i, origID := range result.Previous {
		reordered[i] = parsed.Mesh.Vertices[origID-1]
	}

	out := &objfile.Compressed{
		Mesh: objfile.Mesh{
			Vertices: reordered,
		},
		HasHistory: true,
		HistoryB64: b64,
		Pad:        pad,
		Table:      entries,
		Duplicates: result.Duplicates,
	}

	dst, err := openOutput(v.GetString("output"))
	if err != nil {
		return err
	}
	defer dst.Close()

	log.Infow("writing compressed container", "symbols", len(result.History))
	return objfile.Write(dst, out)
}

func newDecompressCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "decompress",
		Short: "Reconstruct a mesh's connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(v)
		},
	}
}

func runDecompress(v *viper.Viper) error {
	log, err := newLogger(v)
	if err != nil {
		return err
	}
	defer log.Sync()

	in, err := openInput(v.GetString("input"))
	if err != nil {
		return err
	}
	defer in.Close()

	parsed, err := objfile.Read(in, log)
	if err != nil {
		return err
	}

	raw, err := history.Decode(parsed.HistoryB64, parsed.Pad)
	if err != nil {
		return err
	}
	hist, err := sidetable.Resolve(raw, parsed.Table)
	if err != nil {
		return err
	}

	mtable := make([]compress.MTableEntry, len(parsed.Table))
	mi := 0
	for _, e := range parsed.Table {
		if e.Kind == sidetable.KindMerge {
			mtable[mi] = compress.MTableEntry{Position: e.Position, Offset: e.Offset, Length: e.Length}
			mi++
		}
	}
	mtable = mtable[:mi]

	lengths := make([]int, 0, len(parsed.Table))
	for _, e := range parsed.Table {
		if e.Kind == sidetable.KindHole {
			lengths = append(lengths, e.Length)
		}
	}

	log.Infow("replaying symbol stream", "symbols", len(hist))
	decoded, err := decompress.Decompress(hist, lengths, mtable)
	if err != nil {
		return err
	}

	out := &objfile.Compressed{
		Mesh: objfile.Mesh{
			Vertices: parsed.Mesh.Vertices,
			Faces:    decoded.Faces,
		},
	}

	dst, err := openOutput(v.GetString("output"))
	if err != nil {
		return err
	}
	defer dst.Close()

	return objfile.Write(dst, out)
}
