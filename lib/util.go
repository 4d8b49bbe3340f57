package lib

import "errors"
import "strings"

// Parsecsv convert a string of comma separated values into a list
// of strings, whitespace trimmed and empty values dropped.
func Parsecsv(input string) []string {
	if input == "" {
		return nil
	}
	ss := strings.Split(input, ",")
	outs := make([]string, 0)
	for _, s := range ss {
		s = strings.Trim(s, " \t\r\n")
		if s == "" {
			continue
		}
		outs = append(outs, s)
	}
	return outs
}

// FailsafeRequest for gen-server design pattern. While posting a
// request to reqch channel, if channel is full but gen-server has
// exited or crashed, prevent caller from blocking. Similarly, while
// waiting for a response from respch channel, if gen-server has
// exited or crashed, prevent caller from blocking.
func FailsafeRequest(
	reqch, respch chan []interface{},
	cmd []interface{}, finch chan struct{}) ([]interface{}, error) {

	select {
	case reqch <- cmd:
		if respch != nil {
			select {
			case resp := <-respch:
				return resp, nil
			case <-finch:
				return nil, errors.New("server closed")
			}
		}
	case <-finch:
		return nil, errors.New("server closed")
	}
	return nil, nil
}

// FailsafePost for gen-server design pattern. While posting a
// message to reqch channel, if channel is full but gen-server has
// exited or crashed, prevent caller from blocking.
func FailsafePost(
	reqch chan []interface{}, cmd []interface{}, finch chan struct{}) error {

	select {
	case reqch <- cmd:
	case <-finch:
		return errors.New("server closed")
	}
	return nil
}

// ResponseError for gen-server design pattern. If err is not nil
// return err, else type-cast idx-th element in response to error
// and return the same.
func ResponseError(err error, response []interface{}, idx int) error {
	if err != nil {
		return err
	} else if response != nil {
		if response[idx] != nil {
			return response[idx].(error)
		}
		return nil
	}
	return nil
}
