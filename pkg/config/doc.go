// Package config assembles the gateway configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. Each section keeps its own envconfig tags, e.g.
// GRPC_SERVER_PORT, BACKEND_TYPE, BACKEND_REST_BASE_URL,
// BACKEND_REST_PATH_EMBEDDINGS or ZAP_LOGGER_LEVEL.
package config
