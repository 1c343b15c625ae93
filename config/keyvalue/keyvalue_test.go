package keyvalue

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type inner struct {
	Rate float64 `env:"RATE"`
}

type cfg struct {
	inner
	Name    string        `env:"NAME"`
	Port    int           `env:"PORT"`
	On      bool          `env:"ON"`
	Wait    time.Duration `env:"WAIT"`
	List    []string      `env:"LIST"`
	Untaged string
}

func TestEnvKV(t *testing.T) {
	c := cfg{inner{2.5}, "a b", 80, true, time.Second, []string{"x", "y"}, "z"}
	kv := EnvKV(&c)
	require.Len(t, kv, 6)
	for k, want := range map[string]string{
		"RATE": "2.5", "NAME": "a b", "PORT": "80", "ON": "true", "WAIT": "1s",
		"LIST": "x,y",
	} {
		v, ok := kv.Get(k)
		require.True(t, ok, k)
		require.Equal(t, want, v, k)
	}
	var b bytes.Buffer
	PrintEnv(c, &b)
	require.Equal(t, `#!/usr/bin/env bash
export LIST=x,y
export NAME='a b'
export ON=true
export PORT=80
export RATE=2.5
export WAIT=1s
`, b.String())
}
