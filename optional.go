package exa

// Optional request fields are pointers so that "unset" and "set to the
// zero value" stay distinct on the wire. These helpers make literal
// request values readable.

func Bool(v bool) *bool { return &v }

func Int(v int) *int { return &v }

func String(v string) *string { return &v }

func Kind(v SearchKind) *SearchKind { return &v }
