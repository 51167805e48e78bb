// Package pixel describes how color channels are packed into framebuffer pixels.
//
// This module provides a 32-bit XRGB color model and image, compatible with Go's native
// [color.Color] and [image.Image] / [draw.Image] interfaces, plus a [Layout] type
// describing channel masks and shifts.
package pixel
