package malloc

// Doubly linked block lists, threaded through the headers with raw
// addresses and null terminated. Free lists keep ascending address
// order, the in-use lists do not need any order.

// linksorted insert hd at its address sorted position.
func (heap *Heap) linksorted(head *uintptr, hd *header) {
	if *head == 0 {
		hd.next, hd.prev = 0, 0
		*head = hd.base()
		return
	}
	first := heap.checkcookie(hdrat(*head))
	if hd.base() < first.base() {
		hd.prev, hd.next = 0, first.base()
		first.prev = hd.base()
		*head = hd.base()
		return
	}
	last := first
	for last.next != 0 && last.next < hd.base() {
		last = heap.checkcookie(hdrat(last.next))
	}
	hd.next, hd.prev = last.next, last.base()
	if last.next != 0 {
		hdrat(last.next).prev = hd.base()
	}
	last.next = hd.base()
}

// linkhead insert hd at the head of the list.
func (heap *Heap) linkhead(head *uintptr, hd *header) {
	hd.prev, hd.next = 0, *head
	if *head != 0 {
		hdrat(*head).prev = hd.base()
	}
	*head = hd.base()
}

// unlink detach hd from the list it is currently on.
func (heap *Heap) unlink(head *uintptr, hd *header) {
	if hd.prev != 0 {
		hdrat(hd.prev).next = hd.next
	} else {
		*head = hd.next
	}
	if hd.next != 0 {
		hdrat(hd.next).prev = hd.prev
	}
	hd.next, hd.prev = 0, 0
}

// walklist apply fn over every block on the list, headers are
// cookie checked along the way.
func (heap *Heap) walklist(head uintptr, fn func(hd *header)) {
	for off := head; off != 0; off = hdrat(off).next {
		fn(heap.checkcookie(hdrat(off)))
	}
}
