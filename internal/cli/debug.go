//go:build debug

package cli

const verboseBuild = true
