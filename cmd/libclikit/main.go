// Command libclikit builds clikit as a C shared library:
//
//	go build -buildmode=c-shared -o libclikit.so ./cmd/libclikit
//
// Strings returned to C are allocated with malloc and must be released
// with cli_free_string. Argument parsers are opaque uintptr_t handles.
package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"os"
	"runtime/cgo"
	"strings"
	"unsafe"

	"github.com/vbauerster/clikit"
	"github.com/vbauerster/clikit/args"
	"github.com/vbauerster/clikit/internal/boundary"
)

var adapter = boundary.New(os.Stdin, os.Stdout)

func main() {}

func goText(s *C.char) *string {
	if s == nil {
		return nil
	}
	t := C.GoString(s)
	return &t
}

func cText(s string, ok bool) *C.char {
	if !ok || strings.IndexByte(s, 0) >= 0 {
		return nil
	}
	return C.CString(s)
}

func parser(h C.uintptr_t) (p *args.Parser) {
	if h == 0 {
		return nil
	}
	defer func() {
		if recover() != nil {
			p = nil
		}
	}()
	p, _ = cgo.Handle(h).Value().(*args.Parser)
	return p
}

//export cli_log_info
func cli_log_info(message *C.char) { adapter.LogInfo(goText(message)) }

//export cli_log_warn
func cli_log_warn(message *C.char) { adapter.LogWarn(goText(message)) }

//export cli_log_error
func cli_log_error(message *C.char) { adapter.LogError(goText(message)) }

//export cli_log_success
func cli_log_success(message *C.char) { adapter.LogSuccess(goText(message)) }

//export cli_get_template
func cli_get_template(key *C.char) *C.char {
	return cText(adapter.GetTemplate(goText(key)))
}

//export cli_free_string
func cli_free_string(ptr *C.char) {
	if ptr != nil {
		C.free(unsafe.Pointer(ptr))
	}
}

//export cli_load_config
func cli_load_config(path *C.char) C.bool {
	return C.bool(adapter.LoadConfig(goText(path)))
}

//export cli_create_progress_bar
func cli_create_progress_bar(total C.uint64_t) C.size_t {
	h := adapter.CreateProgressBar(uint64(total))
	if h == clikit.InvalidHandle {
		return ^C.size_t(0)
	}
	return C.size_t(h)
}

//export cli_update_progress
func cli_update_progress(id C.size_t, current C.uint64_t, message *C.char) C.bool {
	return C.bool(adapter.UpdateProgress(clikit.Handle(id), uint64(current), goText(message)))
}

//export cli_finish_progress
func cli_finish_progress(id C.size_t, message *C.char) C.bool {
	return C.bool(adapter.FinishProgress(clikit.Handle(id), goText(message)))
}

//export cli_create_arg_parser
func cli_create_arg_parser(programName *C.char) C.uintptr_t {
	p := adapter.NewArgParser(goText(programName))
	if p == nil {
		return 0
	}
	return C.uintptr_t(cgo.NewHandle(p))
}

//export cli_set_parser_description
func cli_set_parser_description(h C.uintptr_t, description *C.char) {
	adapter.SetParserDescription(parser(h), goText(description))
}

//export cli_parse_args
func cli_parse_args(h C.uintptr_t, argc C.int, argv **C.char) C.bool {
	if argv == nil || argc < 0 {
		return false
	}
	tokens := make([]*string, 0, int(argc))
	for _, s := range unsafe.Slice(argv, int(argc)) {
		tokens = append(tokens, goText(s))
	}
	return C.bool(adapter.ParseArgs(parser(h), tokens))
}

//export cli_arg_parser_get
func cli_arg_parser_get(h C.uintptr_t, key *C.char) *C.char {
	return cText(adapter.ArgGet(parser(h), goText(key)))
}

//export cli_arg_parser_has_flag
func cli_arg_parser_has_flag(h C.uintptr_t, flag *C.char) C.bool {
	return C.bool(adapter.ArgHasFlag(parser(h), goText(flag)))
}

//export cli_arg_parser_print_help
func cli_arg_parser_print_help(h C.uintptr_t) {
	adapter.ArgPrintHelp(parser(h))
}

//export cli_arg_parser_free
func cli_arg_parser_free(h C.uintptr_t) {
	if parser(h) != nil {
		cgo.Handle(h).Delete()
	}
}

//export cli_prompt
func cli_prompt(message *C.char) *C.char {
	return cText(adapter.Prompt(goText(message)))
}

//export cli_confirm
func cli_confirm(message *C.char, defaultValue C.bool) C.bool {
	return C.bool(adapter.Confirm(goText(message), bool(defaultValue)))
}

//export cli_select_option
func cli_select_option(message *C.char, options **C.char, count C.size_t) C.int {
	if options == nil || count == 0 {
		return -1
	}
	opts := make([]*string, 0, int(count))
	for _, s := range unsafe.Slice(options, int(count)) {
		opts = append(opts, goText(s))
	}
	return C.int(adapter.SelectOption(goText(message), opts))
}

//export cli_read_password
func cli_read_password(message *C.char) *C.char {
	return cText(adapter.ReadPassword(goText(message)))
}
