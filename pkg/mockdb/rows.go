package mockdb

import (
	"database/sql/driver"
	"io"
)

type resultRows struct {
	sets []*ResultSet
	set  int
	row  int
}

var _ driver.RowsNextResultSet = (*resultRows)(nil)

func (r *resultRows) Columns() []string {
	if r.set >= len(r.sets) {
		return nil
	}
	return r.sets[r.set].Columns
}

func (r *resultRows) Close() error {
	r.set = len(r.sets)
	return nil
}

func (r *resultRows) Next(dest []driver.Value) error {
	if r.set >= len(r.sets) {
		return io.EOF
	}
	rs := r.sets[r.set]
	if r.row >= len(rs.Rows) {
		return io.EOF
	}
	values := rs.Rows[r.row]
	r.row++

	for i := range dest {
		if i >= len(values) {
			dest[i] = nil
			continue
		}
		v, err := driver.DefaultParameterConverter.ConvertValue(values[i])
		if err != nil {
			v = values[i]
		}
		dest[i] = v
	}
	return nil
}

func (r *resultRows) HasNextResultSet() bool {
	return r.set+1 < len(r.sets)
}

func (r *resultRows) NextResultSet() error {
	if !r.HasNextResultSet() {
		return io.EOF
	}
	r.set++
	r.row = 0
	return nil
}
