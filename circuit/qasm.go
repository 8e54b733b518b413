package circuit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// qasmGates maps OpenQASM mnemonics to the gate kinds the engine scores.
// Mnemonics outside this table still occupy depth but are not counted.
var qasmGates = map[string]Gate{
	"x":    GateX,
	"y":    GateY,
	"z":    GateZ,
	"h":    GateH,
	"cx":   GateCNOT,
	"cnot": GateCNOT,
	"cz":   GateCZ,
	"rz":   GateRZ,
	"rx":   GateRX,
	"ry":   GateRY,
	"t":    GateT,
	"s":    GateS,
}

// ParseQASM compiles a subset of OpenQASM 2.0 into a Circuit: headers,
// qreg/creg declarations, gate statements over indexed qubits and indexed
// measure statements. Depth is the longest per-qubit dependency chain.
func ParseQASM(src string) (*Circuit, error) {
	c := New("", 0)
	c.Name = fmt.Sprintf("circuit_%s", c.ID.String()[:8])

	depths := make(map[int]int)
	declared := 0

	for _, stmt := range splitStatements(src) {
		switch {
		case strings.HasPrefix(stmt, "OPENQASM"),
			strings.HasPrefix(stmt, "include"),
			strings.HasPrefix(stmt, "creg"),
			strings.HasPrefix(stmt, "barrier"):
			continue

		case strings.HasPrefix(stmt, "qreg"):
			n, err := registerSize(stmt)
			if err != nil {
				return nil, err
			}
			declared += n

		case strings.HasPrefix(stmt, "measure"):
			target, _, _ := strings.Cut(strings.TrimPrefix(stmt, "measure"), "->")
			qubits, err := operandQubits(target)
			if err != nil {
				return nil, err
			}
			if len(qubits) != 1 {
				return nil, errors.Errorf("qasm: measure wants one indexed qubit, got %q", stmt)
			}
			c.Measurements[qubits[0]]++
			advance(depths, qubits, c)

		default:
			mnemonic, operands, found := strings.Cut(stmt, " ")
			if !found {
				return nil, errors.Errorf("qasm: cannot parse statement %q", stmt)
			}
			// Parameterized gates carry their angles in parentheses: rz(pi/2) q[0].
			if i := strings.IndexByte(mnemonic, '('); i >= 0 {
				mnemonic = mnemonic[:i]
			}
			qubits, err := operandQubits(operands)
			if err != nil {
				return nil, err
			}
			if len(qubits) == 0 {
				return nil, errors.Errorf("qasm: statement %q references no qubits", stmt)
			}
			if gate, ok := qasmGates[strings.ToLower(mnemonic)]; ok {
				c.GateCounts[gate]++
			}
			advance(depths, qubits, c)
		}
	}

	if declared == 0 {
		return nil, errors.New("qasm: no qreg declaration")
	}
	c.QubitsRequired = declared

	for _, d := range depths {
		if d > c.Depth {
			c.Depth = d
		}
	}
	return c, nil
}

// advance pushes every touched qubit to one past the deepest of them.
func advance(depths map[int]int, qubits []int, c *Circuit) {
	deepest := 0
	for _, q := range qubits {
		if depths[q] > deepest {
			deepest = depths[q]
		}
	}
	for _, q := range qubits {
		depths[q] = deepest + 1
		c.QubitsUsed[q] = struct{}{}
	}
}

func splitStatements(src string) []string {
	var statements []string
	for _, line := range strings.Split(src, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		for _, stmt := range strings.Split(line, ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt != "" {
				statements = append(statements, stmt)
			}
		}
	}
	return statements
}

func registerSize(stmt string) (int, error) {
	open := strings.IndexByte(stmt, '[')
	end := strings.IndexByte(stmt, ']')
	if open < 0 || end < open {
		return 0, errors.Errorf("qasm: malformed register declaration %q", stmt)
	}
	n, err := strconv.Atoi(stmt[open+1 : end])
	if err != nil || n <= 0 {
		return 0, errors.Errorf("qasm: bad register size in %q", stmt)
	}
	return n, nil
}

func operandQubits(operands string) ([]int, error) {
	var qubits []int
	for _, operand := range strings.Split(operands, ",") {
		operand = strings.TrimSpace(operand)
		if operand == "" {
			continue
		}
		open := strings.IndexByte(operand, '[')
		end := strings.IndexByte(operand, ']')
		if open < 0 || end < open {
			return nil, errors.Errorf("qasm: operand %q is not an indexed qubit", operand)
		}
		idx, err := strconv.Atoi(operand[open+1 : end])
		if err != nil || idx < 0 {
			return nil, errors.Errorf("qasm: bad qubit index in %q", operand)
		}
		qubits = append(qubits, idx)
	}
	return qubits, nil
}
