/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/launix-de/goscm/driver"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// serveWS upgrades one HTTP connection to a websocket and runs it as a
// remote REPL against sess: every text message received is one top-level
// form, evaluated against the shared session, with the printed result or
// classified error written back as the reply.
func serveWS(sess *driver.Session, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		result, runErr := sess.Run(string(msg))
		var reply string
		if runErr != nil {
			reply = "error: " + runErr.Error()
		} else {
			reply = result
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			return
		}
	}
}

// listen starts a blocking HTTP server exposing a websocket REPL at
// /ws on addr, so remote clients can evaluate forms against sess one at
// a time, serialized through Session.Run.
func listen(sess *driver.Session, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(sess, w, r)
	})
	fmt.Printf("listening for websocket REPL connections on %s/ws\n", addr)
	return http.ListenAndServe(addr, mux)
}
