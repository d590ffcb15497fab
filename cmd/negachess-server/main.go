package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"negachess/internal/engine"
	"negachess/internal/server/game"
	httpserver "negachess/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（无图形界面的环境打不开浏览器）
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "", "optional directory with a browser front end")
	open := flag.Bool("open", false, "open the front end in the default browser")
	flag.Parse()

	mux := http.NewServeMux()
	mux.Handle("/", httpserver.NewServer(game.NewManager(), engine.NewEngine()))
	if *webDir != "" {
		mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(*webDir))))
	}

	log.Printf("listening on %s", *addr)
	if *open && *webDir != "" {
		go func() {
			// 延迟 100ms 打开浏览器，否则服务器可能还没启动
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr + "/web/")
		}()
	}

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
