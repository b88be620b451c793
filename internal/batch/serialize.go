package batch

import (
	"bytes"
	"strconv"
)

// fieldPrecision bounds the number of significant digits used when
// serializing numeric fields. Six significant digits matches the %g payload
// format the scoring endpoints were trained and validated against.
const fieldPrecision = 6

// EncodeRows serializes a contiguous slice of matrix rows into the CSV wire
// payload accepted by scoring endpoints: comma-separated numeric fields, one
// row per line, each line terminated with a newline. The byte length of the
// returned payload is the quantity measured against the batch budget.
//
// The same encoding is used for budget estimation, request payloads, and
// object storage uploads so that the planner's size arithmetic matches what
// actually goes over the wire.
func EncodeRows(rows [][]float64) []byte {
	var buf bytes.Buffer
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.FormatFloat(v, 'g', fieldPrecision, 64))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
