// Package main is nkey, a command line bech32 and NIP-19 encoder and decoder,
// which can also check test vector files and serve the codec as an HTTP API.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"nkey.mleku.dev"
	"nkey.mleku.dev/bech32encoding"
	"nkey.mleku.dev/chk"
	"nkey.mleku.dev/config"
	"nkey.mleku.dev/context"
	"nkey.mleku.dev/ec/bech32"
	"nkey.mleku.dev/errorf"
	"nkey.mleku.dev/hex"
	"nkey.mleku.dev/log"
	"nkey.mleku.dev/vectors"
)

type EncodeCmd struct {
	Kind string `arg:"positional,required" help:"npub, nsec, note, or any lowercase human-readable part"`
	Hex  string `arg:"positional,required" help:"payload in hex, 32 bytes for npub, nsec and note"`
}

type DecodeCmd struct {
	Encoded string `arg:"positional,required" help:"bech32 string to decode"`
}

type VectorsCmd struct {
	Path    string `arg:"positional,required" help:"JSON file of test vectors"`
	Workers int    `arg:"-w,--workers,env:WORKERS" help:"vectors checked at once, 0 for all of them"`
}

type ServeCmd struct{}

type EnvCmd struct{}

type ConfigCmd struct{}

type Args struct {
	Encode  *EncodeCmd  `arg:"subcommand:encode" help:"encode hex as bech32"`
	Decode  *DecodeCmd  `arg:"subcommand:decode" help:"decode bech32, printing the kind and hex"`
	Vectors *VectorsCmd `arg:"subcommand:vectors" help:"check a test vector file"`
	Serve   *ServeCmd   `arg:"subcommand:serve" help:"run the HTTP API"`
	Env     *EnvCmd     `arg:"subcommand:env" help:"print the configuration as a shell script"`
	Config  *ConfigCmd  `arg:"subcommand:config" help:"describe the environment variables of the server"`
}

func (Args) Version() string { return "nkey " + nkey.Version }

func (Args) Description() string { return nkey.Description }

func main() {
	var args Args
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}
	if err := run(&args, os.Stdout); err != nil {
		log.E.F("%s", err)
		os.Exit(1)
	}
}

func run(args *Args, w io.Writer) (err error) {
	switch {
	case args.Encode != nil:
		return encode(w, args.Encode)
	case args.Decode != nil:
		return decode(w, args.Decode)
	case args.Vectors != nil:
		return checkVectors(context.Bg(), w, args.Vectors)
	case args.Serve != nil:
		var cfg *config.C
		if cfg, err = config.New(); chk.E(err) {
			return
		}
		c, cancel := context.Signal(context.Bg())
		defer cancel()
		return serve(c, cfg)
	case args.Env != nil:
		var cfg *config.C
		if cfg, err = config.New(); chk.E(err) {
			return
		}
		config.PrintEnv(cfg, w)
	case args.Config != nil:
		var cfg *config.C
		if cfg, err = config.New(); chk.E(err) {
			return
		}
		config.PrintHelp(cfg, w)
	}
	return
}

func encode(w io.Writer, cmd *EncodeCmd) (err error) {
	var encoded []byte
	tag, e := bech32encoding.ParseTag(cmd.Kind)
	if e == nil && len(cmd.Hex) == bech32encoding.HexKeyLen {
		if encoded, err = bech32encoding.HexToBech32(tag, cmd.Hex); chk.D(err) {
			return
		}
	} else {
		var payload []byte
		if payload, err = hex.Dec(cmd.Hex); chk.D(err) {
			return errorf.D("invalid hex: %w", err)
		}
		if encoded, err = bech32.Encode([]byte(cmd.Kind), payload); chk.D(err) {
			return
		}
	}
	_, err = fmt.Fprintf(w, "%s\n", encoded)
	return
}

func decode(w io.Writer, cmd *DecodeCmd) (err error) {
	var hrp, payload []byte
	if hrp, payload, err = bech32.Decode(cmd.Encoded); chk.D(err) {
		return
	}
	_, err = fmt.Fprintf(w, "%s %s\n", hrp, hex.Enc(payload))
	return
}

func checkVectors(c context.T, w io.Writer, cmd *VectorsCmd) (err error) {
	var vs []vectors.Vector
	if vs, err = vectors.Load(cmd.Path); chk.E(err) {
		return
	}
	var f *vectors.Failures
	if f, err = vectors.CheckAll(c, vs, cmd.Workers); chk.E(err) {
		return
	}
	for _, failure := range f.Sorted() {
		_, _ = fmt.Fprintf(w, "FAIL %s\n", failure.Err)
	}
	_, _ = fmt.Fprintf(w, "%d vectors, %d failed\n", len(vs), f.Len())
	if f.Len() > 0 {
		err = errorf.E("%d of %d vectors in %s failed", f.Len(), len(vs),
			cmd.Path)
	}
	return
}
