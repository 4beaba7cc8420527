// Demo application showing a typical flagset wiring: defaults, a config
// file, environment variables and command-line arguments merged into one
// value set.
package main

import (
	"fmt"
	"os"

	"flagset"
)

type serverConfig struct {
	Host     string   `flag:"host"`
	Port     int64    `flag:"port"`
	Debug    bool     `flag:"debug"`
	Timeout  float64  `flag:"timeout-sec"`
	UDPPorts []int64  `flag:"udp-port"`
	Tags     []string `flag:"tag"`
}

func main() {
	fs := flagset.NewFlagSet()

	fs.Add(flagset.New("host", flagset.String("localhost")).
		WithShorthand('h').
		WithDescription("Address the server binds to"))
	fs.Add(flagset.New("port", flagset.Int64(8080)).
		WithShorthand('p').
		WithDescription("TCP port the server listens on"))
	fs.Add(flagset.New("debug", flagset.Bool(false)).
		WithShorthand('d').
		WithDescription("Enable verbose diagnostics"))
	fs.Add(flagset.New("timeout-sec", flagset.Float64(30)).
		WithDescription("Request timeout in seconds"))
	fs.Add(flagset.New("udp-port", flagset.Int64s()).
		WithShorthand('u').
		WithEnvDelimiter(",").
		WithDescription("UDP ports to listen on, repeatable"))
	fs.Add(flagset.New("tag", flagset.Strings()).
		WithShorthand('t').
		WithEnvDelimiter(",").
		WithDescription("Free-form labels attached to the instance"))

	fs.AddHomeConfigFile(".demo/config.json")
	fs.AddConfigFile("demo.json")

	if err := fs.LoadOS(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		fmt.Fprintln(os.Stderr)
		_ = fs.Usage(os.Stderr, 80)
		os.Exit(2)
	}

	var cfg serverConfig
	if err := fs.Scan(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("config: %+v\n", cfg)
	if rest := fs.Positionals(); len(rest) > 0 {
		fmt.Printf("positionals: %v\n", rest)
	}
}
