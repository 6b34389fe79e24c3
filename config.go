package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	MaxIterations int
	ExportSize    int
	Julia         Julia
	ListenAddr    string
	Origins       []string
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		MaxIterations: DefaultMaxIterations,
		ExportSize:    DefaultExportSize,
		Julia:         DefaultJulia,
		ListenAddr:    DefaultListenAddr,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFile(filepath.Join(homeDir, ".fraktrc"), homeDir)
}

// loadConfigFile reads key = value lines. A missing file, unknown keys and
// unparsable values all fall back to the defaults.
func loadConfigFile(configPath, homeDir string) *Config {
	config := defaultConfig()

	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "maxiterations", "max_iterations", "iterations":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.MaxIterations = n
			}
		case "exportsize", "export_size":
			if n, err := strconv.Atoi(value); err == nil && n > 0 && n <= MaxCanvasSize {
				config.ExportSize = n
			}
		case "julia":
			if j, err := ParseJulia(value); err == nil {
				config.Julia = j
			}
		case "listen", "addr":
			config.ListenAddr = value
		case "origins", "allowed_origins":
			config.Origins = splitList(value)
		}
	}

	return config
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
