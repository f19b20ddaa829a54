package domain

func ListCap[T any](l *List[T]) int { return cap(l.items) }

func ListAt[T any](l *List[T], i int) T { return l.items[i] }

func BufferCap(b *Buffer) int { return cap(b.data) }
