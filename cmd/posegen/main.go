// posegen sends synthetic pose and gaze datagrams for exercising a
// headlink consumer end to end: a sine sweep on pan/tilt plus a gaze
// toggle every couple of seconds.
package main

import (
	"context"
	"flag"
	"math"
	"net"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/teslashibe/go-headlink/internal/config"
	"github.com/teslashibe/go-headlink/internal/log"
	"github.com/teslashibe/go-headlink/pkg/wire"
)

func main() {
	var (
		host      = flag.String("host", "127.0.0.1", "consumer host")
		posePort  = flag.Int("pose-port", config.DefaultPosePort, "pose stream port")
		gazePort  = flag.Int("gaze-port", config.DefaultGazePort, "gaze stream port")
		rate      = flag.Duration("rate", 30*time.Millisecond, "pose send period")
		amplitude = flag.Float64("amplitude", 45, "sweep amplitude in degrees")
		period    = flag.Duration("period", 8*time.Second, "sweep period")
	)
	flag.Parse()
	log.Init("info")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poseConn, err := net.Dial("udp", net.JoinHostPort(*host, strconv.Itoa(*posePort)))
	if err != nil {
		log.Error("pose dial failed", "error", err)
		return
	}
	defer poseConn.Close()

	gazeConn, err := net.Dial("udp", net.JoinHostPort(*host, strconv.Itoa(*gazePort)))
	if err != nil {
		log.Error("gaze dial failed", "error", err)
		return
	}
	defer gazeConn.Close()

	log.Info("sending", "host", *host, "pose_port", *posePort, "gaze_port", *gazePort,
		"amplitude", *amplitude, "period", *period)

	poseTicker := time.NewTicker(*rate)
	defer poseTicker.Stop()
	gazeTicker := time.NewTicker(2 * time.Second)
	defer gazeTicker.Stop()

	start := time.Now()
	looking := false

	for {
		select {
		case <-ctx.Done():
			log.Info("stopped")
			return

		case now := <-poseTicker.C:
			phase := 2 * math.Pi * now.Sub(start).Seconds() / period.Seconds()
			sample := wire.PoseSample{
				Pan:  float32(*amplitude * math.Sin(phase)),
				Tilt: float32(*amplitude / 2 * math.Sin(2*phase)),
			}
			raw, _ := sample.MarshalBinary()
			if _, err := poseConn.Write(raw); err != nil {
				log.Warn("pose send failed", "error", err)
			}

		case now := <-gazeTicker.C:
			looking = !looking
			raw, _ := wire.GazeSample{Looking: looking, Timestamp: now.UnixMilli()}.MarshalBinary()
			if _, err := gazeConn.Write(raw); err != nil {
				log.Warn("gaze send failed", "error", err)
			}
		}
	}
}
