//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/driver"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECC WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"add":       js.FuncOf(Add),
		"scalarMul": js.FuncOf(ScalarMul),
		"order":     js.FuncOf(Order),
	})

	<-c
}

// Request describes the curve and operands of a call. Points are "x,y" or
// "inf"; an empty point means the base point G.
type Request struct {
	Prime  uint64 `json:"prime"`
	A      int64  `json:"a"`
	B      int64  `json:"b"`
	Gx     int64  `json:"gx"`
	Gy     int64  `json:"gy"`
	Limit  uint64 `json:"limit"`
	P      string `json:"p"`
	Q      string `json:"q"`
	Scalar string `json:"k"`
}

// Add returns p + q.
// Arguments:
// 0: JSON string of a Request
// Returns:
// JSON string {"point": "..."} or "error: ..."
func Add(this js.Value, args []js.Value) interface{} {
	return call(args, func(s *driver.Session, req *Request) (interface{}, error) {
		p, err := point(s, req.P)
		if err != nil {
			return nil, err
		}
		q, err := point(s, req.Q)
		if err != nil {
			return nil, err
		}
		return map[string]string{"point": p.Add(q).String()}, nil
	})
}

// ScalarMul returns k·p.
// Arguments:
// 0: JSON string of a Request
// Returns:
// JSON string {"point": "..."} or "error: ..."
func ScalarMul(this js.Value, args []js.Value) interface{} {
	return call(args, func(s *driver.Session, req *Request) (interface{}, error) {
		p, err := point(s, req.P)
		if err != nil {
			return nil, err
		}
		k, err := driver.ParseScalar(req.Scalar)
		if err != nil {
			return nil, err
		}
		return map[string]string{"point": p.ScalarMul(k).String()}, nil
	})
}

// Order returns the order of p.
// Arguments:
// 0: JSON string of a Request
// Returns:
// JSON string {"order": n} or "error: ..."
func Order(this js.Value, args []js.Value) interface{} {
	return call(args, func(s *driver.Session, req *Request) (interface{}, error) {
		p, err := point(s, req.P)
		if err != nil {
			return nil, err
		}
		n, err := driver.Order(p, s.Config.OrderLimit)
		if err != nil {
			return nil, err
		}
		return map[string]uint64{"order": n}, nil
	})
}

// Helpers

func call(args []js.Value, fn func(*driver.Session, *Request) (interface{}, error)) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	d := driver.DefaultConfig()
	req := Request{Prime: d.Prime, A: d.A, B: d.B, Gx: d.Gx, Gy: d.Gy, Limit: d.OrderLimit}
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	cfg := driver.Config{
		Prime:      req.Prime,
		A:          req.A,
		B:          req.B,
		Gx:         req.Gx,
		Gy:         req.Gy,
		OrderLimit: req.Limit,
	}
	s, err := driver.NewSession(cfg, zap.NewNop())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	var res interface{}
	err = driver.Catch(func() error {
		var err error
		res, err = fn(s, &req)
		return err
	})
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	resBytes, err := json.Marshal(res)
	if err != nil {
		return fmt.Sprintf("error: marshal result failed: %v", err)
	}
	return string(resBytes)
}

func point(s *driver.Session, text string) (driver.Point, error) {
	if text == "" {
		return s.G, nil
	}
	return s.ParsePoint(text)
}
