/*
Package star reads and writes STAR files, the block-structured text format
used for metadata exchange in structural-biology pipelines.

A STAR file is a sequence of data blocks. Each block begins with a line whose
first word contains "data_" and holds either plain field/value pairs or a
loop, a table introduced by "loop_", a list of "_"-prefixed column names and
one line per row:

	# comment
	data_general

	_rlnImageSize     64
	_rlnMaskName      mask.mrc

	data_particles

	loop_
	_rlnCoordinateX
	_rlnCoordinateY
	1.5     2.5
	3.5     4.5

Parse and ReadFile build a Document, an ordered collection of blocks. Every
value is a Value: a Number when the word is a floating-point literal, a Text
otherwise. A column may mix both.

	doc, err := star.ReadFile("run_data.star")
	if err != nil {
		// handle error
	}
	particles, err := doc.Table("data_particles")

The parser is lenient. Lines it cannot place (a field without a value, a
row whose width differs from the column list, a column after the first row)
are dropped rather than failing the parse; Parser.Skipped lists them and
OnSkip delivers them as they happen.

Marshal, Encoder and WriteFile render a Document back to text:

	err := star.WriteFile("out.star", doc, star.Separator(4))

Row-level operations on tables (sampling, chunking, half splitting) live in
the transform subpackage.
*/
package star
