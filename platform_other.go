//go:build !darwin && !android

package logonce

// No console is guaranteed here, so the backend filters and drops.
const buildPlatform = PlatformOther
