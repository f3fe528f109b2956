// Package ioutils provides file system and image processing utilities
// for the download pipeline.
//
// # File Operations
//
//	// Ensure the destination directory exists
//	err := ioutils.EnsureDir("/music/new/directory")
//
//	// Write a small artifact such as a playlist or cover image
//	err := ioutils.WriteFile("/music/playlist.m3u", []byte("#EXTM3U\n"))
//
// # Image Processing
//
// The ImageService scales cover art and normalizes it to JPEG:
//
//	svc := ioutils.NewImageService()
//	resized, _ := svc.ResizeImage(imageData, 1000, 1000)
package ioutils
