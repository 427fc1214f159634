package main

import (
	"encoding/binary"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/subarray"
	"github.com/rawbytedev/subarray/pkg/cursor"
)

func main() {
	iterations := flag.Int("iterations", 1_000_000, "number of record writes")
	memprofile := flag.String("memprofile", "mem.prof", "heap profile output path")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address and wait")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}
	f, err := os.Create(*memprofile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	var record [64]byte
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	var sum uint64
	c := cursor.New(record[:])
	for i := 0; i < *iterations; i++ {
		c.Reset()
		binary.BigEndian.PutUint16(cursor.MustNext[[2]byte](c)[:], uint16(i))
		binary.BigEndian.PutUint32(cursor.MustNext[[4]byte](c)[:], uint32(i))
		binary.BigEndian.PutUint64(cursor.MustNext[[8]byte](c)[:], uint64(i))
		sum += binary.BigEndian.Uint64(subarray.Ref[[8]byte](record[:], 6)[:])
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	log.Printf("%d iterations in %s (checksum %d), %d mallocs",
		*iterations, elapsed, sum, after.Mallocs-before.Mallocs)
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
	if *pprofAddr != "" {
		time.Sleep(5 * time.Minute)
	}
}
