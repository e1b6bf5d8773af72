package intcode

import "testing"

// @generated from machine_test.go

//go:generate go run scripts/gen_machine_expects.go -- machine_test.go machine_expects_test.go

func withMachineInput(values ...int64) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withInput(values...)
	}
}

func withMachineOptions(opts ...Option) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withOptions(opts...)
	}
}

func withMachineMemAt(addr uint, values ...int64) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.withMemAt(addr, values...)
	}
}

func expectMachineOutputs(values ...int64) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectOutputs(values...)
	}
}

func expectMachineMemAt(addr uint, values ...int64) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectMemAt(addr, values...)
	}
}

func expectMachineMemory(values ...int64) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectMemory(values...)
	}
}

func expectMachineLastEvent(kind EventKind) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectLastEvent(kind)
	}
}

func expectMachineError(check func(t *testing.T, err error)) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectError(check)
	}
}

func expectMachineErrorAs(target interface{}, at uint) func(machineTestCase) machineTestCase {
	return func(mt machineTestCase) machineTestCase {
		return mt.expectErrorAs(target, at)
	}
}
