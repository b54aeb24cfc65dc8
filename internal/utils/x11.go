package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	xConn *xgb.Conn
	xRoot xproto.Window
)

// InitX11 opens a connection to the X server for global pointer queries.
// Used by the desktop-parallax camera mode, which needs the pointer position
// even when the window is unfocused.
func InitX11() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	xConn = conn
	xRoot = xproto.Setup(conn).DefaultScreen(conn).Root
	return nil
}

// GlobalMousePosition returns the pointer position in root-window coordinates.
func GlobalMousePosition() (int, int, error) {
	if xConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}

	reply, err := xproto.QueryPointer(xConn, xRoot).Reply()
	if err != nil {
		return 0, 0, err
	}

	return int(reply.RootX), int(reply.RootY), nil
}

// CloseX11 drops the X connection if one was opened.
func CloseX11() {
	if xConn != nil {
		xConn.Close()
		xConn = nil
	}
}
