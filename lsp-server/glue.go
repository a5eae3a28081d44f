package lspserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/sourcegraph/jsonrpc2"
)

type Method func(ctx context.Context, conn jsonrpc2.JSONRPC2, params json.RawMessage) interface{}
type MethodMap map[string]Method

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// Zu lifts a typed handler like
//
//	func (s *server) DidOpen(ctx, conn, params lsp.DidOpenTextDocumentParams)
//
// into a Method, unmarshalling the raw params into the third argument.
// Handlers with no results are notifications; handlers returning (result,
// error) are requests.
func Zu(fn interface{}) Method {
	val := reflect.ValueOf(fn)
	in := val.Type().In(2)
	return func(ctx context.Context, conn jsonrpc2.JSONRPC2, params json.RawMessage) interface{} {
		v := reflect.New(in)
		if len(params) > 0 {
			json.Unmarshal(params, v.Interface())
		}
		ret := val.Call([]reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(conn), v.Elem()})
		switch len(ret) {
		case 0: // notification
			return nil
		case 2: // request
			if !ret[1].IsNil() {
				return ret[1].Interface()
			}
			return ret[0].Interface()
		default:
			panic(fmt.Sprintf("handler %s has unknown arity", val.Type()))
		}
	}
}

// StartServer speaks the protocol over stdio and blocks until the client
// disconnects.
func StartServer(methods MethodMap) {
	han := jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
		m, ok := methods[req.Method]
		if !ok {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: req.Method}
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		resp := m(ctx, conn, params)
		if err, ok := resp.(error); ok {
			return nil, err
		}
		return resp, nil
	})
	<-jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}), han).DisconnectNotify()
}
