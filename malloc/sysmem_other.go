// +build !linux

package malloc

func brksysmem() Sysmem {
	panicerr(`"brk" sysmem not supported on this platform`)
	return nil
}

func defaultsysmem() Sysmem {
	return newsimmem(Simcapacity)
}
