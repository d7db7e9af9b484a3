// Package commands defines the soundcheck CLI.
//
// The root command takes no flags or subcommands. Every argument, including
// flag-shaped ones, is accepted and ignored; the command writes a single
// confirmation line naming the linked ft_lib submodule.
package commands
