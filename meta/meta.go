// meta/meta.go
package meta

// GO_ROUTINES defines the number of games played in parallel by experiments.
const GO_ROUTINES = 8

// MAX_TURNS defines the turn limit of a self-play game.
const MAX_TURNS = 400

// UPDATE_BUFFER defines how many updates a hosted game keeps for its readers.
const UPDATE_BUFFER = 64

// CONFIG_FILE is the config path relative to the xdg config directories.
const CONFIG_FILE = "twixt/config.json"
