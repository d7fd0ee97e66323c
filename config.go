package main

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Store         string
	StorePath     string
	RedisAddr     string
	RedisDB       int
	RedisPrefix   string
	Prompts       string
	LogFile       string
	SaveDirectory string
	Confirmations bool
	CanvasWidth   int
	CanvasHeight  int
}

func defaultConfig() *Config {
	config := &Config{
		Store:         "file",
		RedisAddr:     "localhost:6379",
		RedisPrefix:   defaultRedisPrefix,
		LogFile:       filepath.Join(os.TempDir(), "happycap.log"),
		Confirmations: true,
		CanvasWidth:   defaultCanvasWidth,
		CanvasHeight:  defaultCanvasHeight,
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		config.StorePath = filepath.Join(homeDir, ".happycap")
	} else {
		config.StorePath = ".happycap"
	}
	return config
}

// loadConfig reads ~/.happycaprc, then .env, then HAPPYCAP_* variables. Any
// missing source is skipped.
func loadConfig() *Config {
	config := defaultConfig()

	if homeDir, err := os.UserHomeDir(); err == nil {
		config.loadRC(filepath.Join(homeDir, ".happycaprc"))
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Debug("could not load .env", "error", err)
	}
	config.applyEnv()
	return config
}

func (c *Config) loadRC(path string) {
	file, err := os.Open(path)
	if err != nil {
		return
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
		c.set(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}
}

var envKeys = []string{
	"store", "store_path", "redis_addr", "redis_db", "redis_prefix", "prompts",
	"log_file", "save_directory", "confirmations", "canvas_width", "canvas_height",
}

func (c *Config) applyEnv() {
	for _, key := range envKeys {
		if value, ok := os.LookupEnv("HAPPYCAP_" + strings.ToUpper(key)); ok && value != "" {
			c.set(key, value)
		}
	}
}

func (c *Config) set(key, value string) {
	switch strings.ToLower(key) {
	case "store", "backend":
		c.Store = strings.ToLower(value)
	case "store_path", "storepath", "store_dir":
		c.StorePath = expandPath(value)
	case "redis_addr", "redisaddr":
		c.RedisAddr = value
	case "redis_db", "redisdb":
		if n, err := strconv.Atoi(value); err == nil {
			c.RedisDB = n
		}
	case "redis_prefix":
		c.RedisPrefix = value
	case "prompts", "prompt_list":
		if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
			c.Prompts = value
		} else {
			c.Prompts = expandPath(value)
		}
	case "log_file", "logfile":
		c.LogFile = expandPath(value)
	case "savedirectory", "save_directory", "savedir":
		c.SaveDirectory = expandPath(value)
	case "confirmations", "confirm":
		c.Confirmations = strings.ToLower(value) == "true"
	case "canvas_width":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			c.CanvasWidth = n
		}
	case "canvas_height":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			c.CanvasHeight = n
		}
	}
}

func expandPath(value string) string {
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) CanvasSize() Size {
	return Size{W: float64(c.CanvasWidth), H: float64(c.CanvasHeight)}
}
