/*
Package carver is a content aware image resize library. It shrinks an image
vertically and horizontally by repeatedly removing the connected path of pixels
(seam) carrying the least visual information, as described by Avidan and Shamir
in "Seam Carving for Content-Aware Image Resizing" (2007).

The energy of a pixel is the L1 magnitude of the Sobel gradient of the grayscale
image. The lowest energy vertical seam is found by dynamic programming over the
cumulative energy table; horizontal seams are removed by rotating the image and
its energy map a quarter turn, removing a vertical seam and rotating back.

The package provides a command line interface, supporting various flags for different
types of rescaling operations. To check the supported commands type:

	$ carver --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/seamcarving/carver"
	)

	func main() {
		p := &carver.Processor{
			NewWidth:  640,
			NewHeight: 480,
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error rescaling image: %s", err.Error())
		}
	}

The lower level functions (EstimateEnergy, FindVerticalSeam, RemoveVerticalSeam,
RemoveHorizontalSeam, Resize and MarkSeam) operate directly on *image.NRGBA values.
None of them modifies its input: every removal returns a new image and energy map.
*/
package carver
