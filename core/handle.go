package core

// MeshHandle identifies a mesh owned by the renderer collaborator
type MeshHandle uint32

// ShaderHandle identifies a compiled shader owned by the renderer collaborator
type ShaderHandle uint32

// SoundID identifies an audio source registered with the audio collaborator
type SoundID uint32
