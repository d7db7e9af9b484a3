// Package sound is the ft_lib submodule required by the soundcheck entry point.
// It exports no behavior; referencing it makes its presence a build requirement.
package sound

// Module is the submodule name.
const Module = "sound"
