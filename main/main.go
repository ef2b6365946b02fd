package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"unsafe"

	"github.com/rawbytedev/smolstr"
)

// Profiling driver: hammers the interner with a mix of inline and heap
// sized strings and writes a heap profile for inspection.
func main() {
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	words := []string{
		"if", "for", "func", "return",
		"a somewhat longer identifier that cannot stay inline",
		"another identifier long enough to require an allocation",
	}
	in := smolstr.NewIntern24()
	for i := 0; i < 100000; i++ {
		for _, w := range words {
			s := in.Intern(w)
			if s.Len() != len(w) {
				log.Fatalf("length mismatch for %q", w)
			}
			s.Free()
		}
	}
	log.Printf("interned %d distinct heap strings", in.Len())
	log.Printf("sizeof Str16=%d Str24=%d",
		unsafe.Sizeof(smolstr.Str16{}), unsafe.Sizeof(smolstr.Str24{}))
	in.Reset()

	pprof.WriteHeapProfile(f)
}
