package machine

import (
	"ippcode22/lang/ipperr"
	"ippcode22/lang/program"
)

func opCreateFrame(m *Machine, _ program.Instruction) error {
	m.regs.CreateFrame()
	return nil
}

func opPushFrame(m *Machine, _ program.Instruction) error {
	if !m.regs.PushFrame() {
		return ipperr.New(55, "PUSHFRAME with no temporary frame at order %d", m.ip)
	}
	return nil
}

func opPopFrame(m *Machine, _ program.Instruction) error {
	if !m.regs.PopFrame() {
		return ipperr.New(55, "POPFRAME with empty frame stack at order %d", m.ip)
	}
	return nil
}

func opDefVar(m *Machine, ins program.Instruction) error {
	tag, name := splitVar(ins.Args[0].Text)
	frame := m.regs.Frame(tag)
	if frame == nil {
		return ipperr.New(55, "DEFVAR into undefined frame %s at order %d", tag, m.ip)
	}
	if !frame.Declare(name) {
		return ipperr.New(52, "variable redefinition: %s at order %d", ins.Args[0].Text, m.ip)
	}
	return nil
}
