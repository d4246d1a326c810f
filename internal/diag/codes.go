package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Сканер внешнего фронтенда
	ScanError Code = 1001

	// Синтаксис
	SynError Code = 2001

	// Семантика (go/types)
	TypeError     Code = 3001
	TypeSoftError Code = 3002

	// Инвокация / тулчейн
	ToolchainNotFound Code = 9001
	ToolchainBadArgs  Code = 9002
	ToolchainNoRoot   Code = 9003
)

var codeDescription = map[Code]string{
	UnknownCode:       "unknown error",
	ScanError:         "scan error",
	SynError:          "syntax error",
	TypeError:         "type error",
	TypeSoftError:     "soft type error",
	ToolchainNotFound: "toolchain executable not found",
	ToolchainBadArgs:  "invalid invocation argument",
	ToolchainNoRoot:   "toolchain resource root not found",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SCAN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TYPE%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("DRV%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return c.ID()
}
