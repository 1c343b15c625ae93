// Package keyvalue turns go-simpler/env tagged configuration structs into
// sorted key/value lists and renders them as a shell script that sets the
// same variables, which is also a valid .env file.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// Get returns the value of key.
func (kv KVSlice) Get(key string) (value string, ok bool) {
	for _, p := range kv {
		if p.Key == key {
			return p.Value, true
		}
	}
	return
}

// EnvKV turns a struct with `env` keys into key/value pairs. Pointers to
// structs are followed, and fields of embedded structs are included.
func EnvKV(cfg any) (m KVSlice) { return envKV(reflect.ValueOf(cfg)) }

var durationType = reflect.TypeOf(time.Duration(0))

func envKV(v reflect.Value) (m KVSlice) {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			m = append(m, envKV(v.Field(i))...)
			continue
		}
		k := f.Tag.Get("env")
		if k == "" {
			continue
		}
		m = append(m, KV{k, format(v.Field(i))})
	}
	return
}

// format renders a field without Interface, so fields reached through
// unexported embedded structs can be read.
func format(v reflect.Value) (val string) {
	switch v.Kind() {
	case reflect.String:
		val = v.String()
	case reflect.Bool:
		val = strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type() == durationType {
			val = time.Duration(v.Int()).String()
		} else {
			val = strconv.FormatInt(v.Int(), 10)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val = strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		val = strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Slice:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = format(v.Index(i))
		}
		val = strings.Join(parts, ",")
	}
	return
}

// PrintEnv renders the key/values of a config struct to a provided io.Writer.
func PrintEnv(cfg any, printer io.Writer) {
	_, _ = fmt.Fprintln(printer, "#!/usr/bin/env bash")
	kvs := EnvKV(cfg)
	sort.Sort(kvs)
	for _, v := range kvs {
		_, _ = fmt.Fprintf(printer, "export %s=%s\n", v.Key, quote(v.Value))
	}
}

func quote(s string) string {
	if strings.ContainsAny(s, " \t\"'$`\\") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}
