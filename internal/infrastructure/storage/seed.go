package storage

import _ "embed"

// Seed embebido: dataset inicial cuando no existe documento persistido.
//
//go:embed seed.json
var defaultSeed []byte
