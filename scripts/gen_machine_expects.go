// Command gen_machine_expects writes free function wrappers for the
// machineTestCase builder methods declared in a test file, so that table
// rows can compose them with machineTestCase.apply.
//
// Usage:
//
//	go run scripts/gen_machine_expects.go -- <test-file> <output-file>
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

const builderType = "machineTestCase"

var timeout = flag.Duration("timeout", 5*time.Second, "time limit for formatting output")

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("usage: gen_machine_expects <test-file> <output-file>")
	}
	srcName, outName := flag.Arg(0), flag.Arg(1)

	src, err := generate(srcName)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	out, err := os.Create(outName)
	if err != nil {
		log.Fatalf("failed to create %v: %v", outName, err)
	}
	if err := goimports(ctx, src, out); err != nil {
		out.Close()
		log.Fatalln(err)
	}
	if err := out.Close(); err != nil {
		log.Fatalln(err)
	}
}

// goimports formats src into out, feeding the formatter from a second
// goroutine so that neither side blocks on a full pipe.
func goimports(ctx context.Context, src []byte, out io.Writer) error {
	eg, ctx := errgroup.WithContext(ctx)

	cmd := exec.CommandContext(ctx, "goimports")
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	in, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	eg.Go(func() error {
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		_, err := in.Write(src)
		if cerr := in.Close(); err == nil {
			err = cerr
		}
		return err
	})
	return eg.Wait()
}

func generate(srcName string) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, srcName, nil, 0)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package %v\n\n", file.Name.Name)
	fmt.Fprintf(&buf, "// @generated from %v\n\n", srcName)
	fmt.Fprintf(&buf, "//go:generate go run scripts/gen_machine_expects.go -- %v %v\n\n",
		srcName, flag.Arg(1))

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !isBuilder(fn) {
			continue
		}
		if err := writeWrapper(&buf, fset, fn); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// isBuilder matches methods like
// func (mt machineTestCase) expectFoo(...) machineTestCase.
func isBuilder(fn *ast.FuncDecl) bool {
	name := fn.Name.Name
	if !strings.HasPrefix(name, "expect") && !strings.HasPrefix(name, "with") {
		return false
	}
	if fn.Recv == nil || len(fn.Recv.List) != 1 || !isIdent(fn.Recv.List[0].Type, builderType) {
		return false
	}
	res := fn.Type.Results
	return res != nil && len(res.List) == 1 && isIdent(res.List[0].Type, builderType)
}

func isIdent(expr ast.Expr, name string) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == name
}

func writeWrapper(buf *bytes.Buffer, fset *token.FileSet, fn *ast.FuncDecl) error {
	name := fn.Name.Name
	prefix := "with"
	if strings.HasPrefix(name, "expect") {
		prefix = "expect"
	}

	var params, args []string
	for _, field := range fn.Type.Params.List {
		var typ bytes.Buffer
		if err := printer.Fprint(&typ, fset, field.Type); err != nil {
			return err
		}
		_, variadic := field.Type.(*ast.Ellipsis)
		for _, id := range field.Names {
			params = append(params, id.Name+" "+typ.String())
			if variadic {
				args = append(args, id.Name+"...")
			} else {
				args = append(args, id.Name)
			}
		}
	}

	fmt.Fprintf(buf, "func %vMachine%v(%v) func(%v) %v {\n",
		prefix, name[len(prefix):], strings.Join(params, ", "), builderType, builderType)
	fmt.Fprintf(buf, "\treturn func(mt %v) %v {\n", builderType, builderType)
	fmt.Fprintf(buf, "\t\treturn mt.%v(%v)\n", name, strings.Join(args, ", "))
	buf.WriteString("\t}\n}\n\n")
	return nil
}
