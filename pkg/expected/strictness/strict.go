//go:build strict

package strictness

// Enabled reports whether this build resolves "supports operation" to
// "guaranteed never to fail".
const Enabled = true
