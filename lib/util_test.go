package lib

import "errors"
import "reflect"
import "testing"

func TestParsecsv(t *testing.T) {
	if outs := Parsecsv(""); outs != nil {
		t.Errorf("unexpected %v", outs)
	}
	ref := []string{"10b", "5r", "f", "f"}
	if outs := Parsecsv("10b, 5r ,f,,f,"); !reflect.DeepEqual(ref, outs) {
		t.Errorf("expected %v, got %v", ref, outs)
	}
}

func TestFailsafeRequest(t *testing.T) {
	reqch := make(chan []interface{}, 1)
	respch := make(chan []interface{}, 1)
	finch := make(chan struct{})

	donech := make(chan bool)
	go func() {
		msg := <-reqch
		msg[1].(chan []interface{}) <- []interface{}{errors.New("fail")}
		donech <- true
	}()

	cmd := []interface{}{byte(1), respch}
	resp, err := FailsafeRequest(reqch, respch, cmd, finch)
	if err != nil {
		t.Errorf("unexpected %v", err)
	} else if err := ResponseError(err, resp, 0); err.Error() != "fail" {
		t.Errorf("unexpected %v", err)
	}
	<-donech

	// gen-server exited, caller should not block.
	close(finch)
	reqch, respch = make(chan []interface{}), make(chan []interface{})
	if _, err = FailsafeRequest(reqch, respch, cmd, finch); err == nil {
		t.Errorf("expected error")
	}
	if err = FailsafePost(reqch, cmd, finch); err == nil {
		t.Errorf("expected error")
	}
}

func TestResponseError(t *testing.T) {
	fail := errors.New("fail")
	if err := ResponseError(fail, nil, 0); err != fail {
		t.Errorf("unexpected %v", err)
	}
	if err := ResponseError(nil, []interface{}{nil}, 0); err != nil {
		t.Errorf("unexpected %v", err)
	}
	if err := ResponseError(nil, []interface{}{fail}, 0); err != fail {
		t.Errorf("unexpected %v", err)
	}
	if err := ResponseError(nil, nil, 0); err != nil {
		t.Errorf("unexpected %v", err)
	}
}
