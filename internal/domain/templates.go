package domain

// Placeholder names understood by the templates below.
const (
	PhBufVar    = "buf_var"
	PhIdxVar    = "idx_var"
	PhThreshVar = "thresh_var"
	PhBufLen    = "buf_len"
	PhIdxInit   = "idx_init"
	PhThresh    = "thresh"
	PhTrueIdx   = "true_idx"
	PhFalseIdx  = "false_idx"
	PhChar      = "char"
	PhBody      = "body"
)

// DeclInit pairs a declaration template with its optional initialization.
// An empty Init means the variable is only declared (char buffers).
type DeclInit struct {
	Decl string
	Init string
}

// HasInit reports whether the pair carries an initialization line.
func (p DeclInit) HasInit() bool {
	return p.Init != ""
}

var condDeclInitPairs = []DeclInit{
	{Decl: "char $buf_var[$buf_len];"},
	{Decl: "int $idx_var;", Init: "$idx_var = $idx_init;"},
	{Decl: "int $thresh_var;", Init: "$thresh_var = $thresh;"},
}

var condGuardLines = []string{
	"if($idx_var < $thresh_var){",
	"$idx_var = $true_idx;",
	"} else {",
	"$idx_var = $false_idx;",
	"}",
}

const condBufwriteLine = "$buf_var[$idx_var] = '$char';"

// Decoy lines are rendered eagerly since each fragment owns its own names.
const (
	decoyBufDeclFormat = "char %s[%d];"
	decoyIdxDeclFormat = "int %s;"
	decoyIdxInitFormat = "%s = %d;"
	decoyWriteFormat   = "%s[%s] = '%c';"
)

const funcTemplate = `#include <stdlib.h>
int main()
{
$body
    return 0;
}`

// Line counts of funcTemplate around $body.
const (
	skeletonHeadLines = 3 // include, signature, opening brace
	skeletonTailLines = 2 // return, closing brace
)

// CondDeclInitPairs returns a copy of the setup templates for the guard.
func CondDeclInitPairs() []DeclInit {
	return append([]DeclInit(nil), condDeclInitPairs...)
}

// CondGuardLines returns a copy of the if/else guard templates.
func CondGuardLines() []string {
	return append([]string(nil), condGuardLines...)
}
