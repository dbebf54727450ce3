package main

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/kanengo/kuid/basex"
	"github.com/kanengo/kuid/codecx"
	"github.com/kanengo/kuid/contextx"
	"github.com/kanengo/kuid/convertx"
	"github.com/kanengo/kuid/slicex"
	"github.com/urfave/cli/v2"
)

type hashResult struct {
	Hash string `json:"hash"`
}

type valuesResult struct {
	Hash   string   `json:"hash"`
	Values []uint64 `json:"values,omitempty"`
	Error  string   `json:"error,omitempty"`
}

type hexResult struct {
	Hash string `json:"hash"`
	Hex  string `json:"hex"`
}

type infoResult struct {
	Alphabet    string `json:"alphabet"`
	Separators  string `json:"separators"`
	Guards      string `json:"guards"`
	MinLength   int    `json:"min_length"`
	Fingerprint string `json:"fingerprint"`
}

func (r *runner) writeJSON(v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	r.println(string(data))
	return nil
}

func (r *runner) encode(c *cli.Context) error {
	if c.NArg() == 0 {
		return errNoArgs
	}

	values, err := convertx.ParseUint64s(c.Args().Slice())
	if err != nil {
		return err
	}

	hash, err := r.codec.Encode(values)
	if err != nil {
		return err
	}

	if r.json {
		return r.writeJSON(hashResult{Hash: hash})
	}
	r.println(hash)
	return nil
}

func (r *runner) decode(c *cli.Context) error {
	if c.NArg() == 0 {
		return errNoArgs
	}

	hashes := c.Args().Slice()
	ctx := contextx.WithLogger(c.Context, r.logger)
	results := codecx.DecodeMany(ctx, r.codec, hashes, codecx.WithConcurrency(r.cfg.Batch.Concurrency))

	out := slicex.Map(results, func(res basex.Result[[]uint64], i int) valuesResult {
		values, err := res.Get()
		if err != nil {
			return valuesResult{Hash: hashes[i], Error: err.Error()}
		}
		return valuesResult{Hash: hashes[i], Values: values}
	})

	if r.json {
		if err := r.writeJSON(out); err != nil {
			return err
		}
	} else {
		for _, vr := range out {
			if vr.Error != "" {
				r.println(vr.Hash + "\terror: " + vr.Error)
				continue
			}
			r.println(vr.Hash + "\t" + joinValues(vr.Values))
		}
	}

	failed := slicex.Count(results, func(res basex.Result[[]uint64]) bool { return !res.Ok() })
	if failed > 0 {
		return fmt.Errorf("%d of %d hashids failed to decode", failed, len(results))
	}
	return nil
}

func (r *runner) encodeHex(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("encode-hex takes exactly one argument, got %d", c.NArg())
	}

	hex := c.Args().First()
	hash, err := r.hashID.EncodeHex(hex)
	if err != nil {
		return err
	}

	if r.json {
		return r.writeJSON(hexResult{Hash: hash, Hex: hex})
	}
	r.println(hash)
	return nil
}

func (r *runner) decodeHex(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("decode-hex takes exactly one argument, got %d", c.NArg())
	}

	hash := c.Args().First()
	hex, err := r.hashID.DecodeHex(hash)
	if err != nil {
		return err
	}

	if r.json {
		return r.writeJSON(hexResult{Hash: hash, Hex: hex})
	}
	r.println(hex)
	return nil
}

func (r *runner) info(*cli.Context) error {
	info := infoResult{
		Alphabet:    r.hashID.Alphabet(),
		Separators:  r.hashID.Separators(),
		Guards:      r.hashID.Guards(),
		MinLength:   r.hashID.Length(),
		Fingerprint: fmt.Sprintf("%016x", r.hashID.Fingerprint()),
	}

	if r.json {
		return r.writeJSON(info)
	}
	r.println("alphabet:   ", info.Alphabet)
	r.println("separators: ", info.Separators)
	r.println("guards:     ", info.Guards)
	r.println("min length: ", info.MinLength)
	r.println("fingerprint:", info.Fingerprint)
	return nil
}
