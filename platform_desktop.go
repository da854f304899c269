//go:build darwin && !ios

package logonce

const buildPlatform = PlatformDesktop
