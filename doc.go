// Package glplot maps numeric data onto a drawing surface and composes
// geometric primitives into frames.
//
// Data flows from points through Extent into Intervals, from Intervals
// into a ViewPort, and from the ViewPort's transform into every draw call
// a Canvas issues:
//
//	vp, err := glplot.FitToData(samples, glplot.DefaultScreen)
//	canvas, err := glplot.NewCanvas(display, glplot.NewPolyline(samples))
//	err = glplot.Render(display, []glplot.Layer{glplot.ClearColor{Color: glplot.Black}, canvas}, vp)
//
// Drawing resources come from a Backend. The gles package provides one
// on top of OpenGL ES 2 and GLFW, the raster package renders into memory.
package glplot
