// Package config provides configuration management for huectl.
//
// Configuration is loaded from multiple sources and merged in a fixed
// order, with later sources overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/huectl/config.yaml)
//  3. Project configuration (./.huectl/config.yaml)
//  4. Environment variables (HUECTL_*), after loading ./.env if present
//
// An explicit path (the --config flag) replaces layers 2 and 3.
//
// # Configuration Structure
//
//	palette:
//	  defaultCount: 5
//	  minCount: 2
//	  maxCount: 8
//	server:
//	  transport: stdio     # stdio, sse or streamable-http
//	  host: localhost
//	  port: 8090
//	store:
//	  dir: ~/.local/share/huectl
//	ui:
//	  theme: auto          # auto, dark or light
//	update:
//	  repository: huectl/huectl
//
// # Environment Variables
//
//   - HUECTL_PALETTE_COUNT: default palette size
//   - HUECTL_SERVER_TRANSPORT, HUECTL_SERVER_HOST, HUECTL_SERVER_PORT
//   - HUECTL_STORE_DIR: palette store directory
//   - HUECTL_UI_THEME: auto, dark or light
//   - HUECTL_LOG_LEVEL: debug, info, warn or error
package config
