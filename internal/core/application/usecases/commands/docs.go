// Package commands contains the job use cases. Every job is a command built
// through its constructor and a handler whose Handle validates the command
// before touching any collaborator.
package commands
