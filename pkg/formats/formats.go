// Package formats reads and writes the model file formats the viewer loads.
// Wavefront OBJ is the only format; see ParseOBJ and WriteOBJ.
package formats
