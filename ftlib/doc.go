// Package ftlib is the library namespace that the soundcheck binary links
// against. Its submodules live in child packages, e.g. ftlib/sound.
package ftlib

// Namespace is the library's published name.
const Namespace = "ft_lib"
