// Package gaussio is a low-level toolkit for reading the GaussDB binary value
// format.
/*
gaussio walks a value's bytes with a Reader that performs network byte order
conversion and refuses to read past the end of the buffer. Writing is done with
the append helpers from github.com/jackc/pgio.
*/
package gaussio
