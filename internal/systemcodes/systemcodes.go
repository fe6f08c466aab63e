package systemcodes

const (
	ErrorCodeGeneric = 3
	ErrorCodeConfig  = 4
	ErrorCodeSource  = 5
)
