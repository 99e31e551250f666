package platform

// Package platform contains OS/platform integration: filesystem helpers,
// transcript saving, audio type detection, and opening files with the system
// default application or file manager.
