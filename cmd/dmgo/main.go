// Command dmgo runs the cycle-accurate DMG core against a boot ROM and a
// ROM-only cartridge image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"dmgo/bootrom"
	"dmgo/cartridge"
	"dmgo/cpu"
	"dmgo/mem"
)

const bootROMPath = "DMG_ROM.bin"

func main() {
	debug := flag.Bool("debug", false, "print a disassembly line before each instruction")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dmgo [--debug] <rom-path>")
		os.Exit(2)
	}
	romPath := flag.Arg(0)

	bootData, err := os.ReadFile(bootROMPath)
	if err != nil {
		log.Fatalf("dmgo: reading boot ROM %s: %v", bootROMPath, err)
	}
	boot, err := bootrom.New(bootData)
	if err != nil {
		log.Fatalf("dmgo: %v", err)
	}

	romData, err := os.ReadFile(romPath)
	if err != nil {
		log.Fatalf("dmgo: reading cartridge %s: %v", romPath, err)
	}
	cart, err := cartridge.Load(romData)
	if err != nil {
		log.Fatalf("dmgo: %v", err)
	}

	fmt.Printf("title:  %s\n", cart.Title)
	fmt.Printf("mapper: %s\n", cart.MapperName())
	fmt.Printf("size:   %s\n", cart.SizeName())

	bus := mem.NewBus(boot, cart)
	c := cpu.NewCPU(bus)
	c.Debug = *debug

	for {
		if err := c.Step(); err != nil {
			fmt.Fprintln(os.Stderr, "dmgo: fatal:", err)
			fmt.Fprintln(os.Stderr, c.RegisterDump())
			os.Exit(1)
		}
	}
}
