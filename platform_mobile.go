//go:build ios || android

package logonce

const buildPlatform = PlatformMobile
