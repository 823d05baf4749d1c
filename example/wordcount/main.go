package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"sort"

	"github.com/gostonefire/collections/alloc"
	"github.com/gostonefire/collections/array"
	"github.com/gostonefire/collections/list"
	"github.com/gostonefire/collections/sv"
	"github.com/gostonefire/collections/table"
)

const top = 10

type wordFreq struct {
	word  string
	count int
}

type wordCount struct {
	counts *table.Table[string, int]
	order  *list.List[string]
	lines  int
}

// count - Counts lower cased words in r, remembering the order in which words were first seen
func count(r io.Reader, tracker alloc.Tracker) (wc *wordCount, err error) {
	counts, err := table.NewWithConf[string, int](table.Conf[string]{Tracker: tracker})
	if err != nil {
		return
	}

	wc = &wordCount{
		counts: counts,
		order:  list.NewWithConf[string](list.Conf{Tracker: tracker}),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		wc.lines++

		rest := sv.New(scanner.Bytes()).Trim()
		for rest.Len() > 0 {
			var word sv.View
			word, rest = rest.Split(' ')
			rest = rest.TrimLeft()

			word = word.Trim()
			if word.Len() == 0 || !word.IsAlnum() {
				continue
			}

			key := word.Lower().String()
			n := wc.counts.Slot(key)
			if *n == 0 {
				wc.order.Push(key)
			}
			*n++
		}
	}
	err = scanner.Err()

	return
}

// ranked - Returns words by falling count, ties broken by first appearance
func (W *wordCount) ranked() *array.Array[wordFreq] {
	ranked := array.New[wordFreq]()

	it := W.order.Iter()
	for it.Next() {
		n, _ := W.counts.Get(*it.Value())
		ranked.Push(wordFreq{word: *it.Value(), count: n})
	}

	items := ranked.Items()
	sort.SliceStable(items, func(i, j int) bool { return items[i].count > items[j].count })

	return ranked
}

func (W *wordCount) destroy() {
	W.counts.Destroy()
	W.order.Destroy()
}

func main() {
	in := io.Reader(os.Stdin)
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	counter := alloc.NewCounter()

	wc, err := count(in, counter)
	if err != nil {
		log.Fatal(err)
	}

	log.Println(wc.lines, "lines,", wc.counts.Len(), "distinct words")

	ranked := wc.ranked()
	frequent := ranked.Filter(func(item *wordFreq) bool { return item.count > 1 })
	log.Println(frequent.Len(), "words seen more than once")

	for i, item := range ranked.Items() {
		if i == top {
			break
		}
		log.Println(item.word, "=", item.count)
	}

	stat := wc.counts.Stat(false)
	log.Printf("buckets used %d of %d, longest chain %d", stat.UsedBuckets, stat.Buckets, stat.LongestChain)

	frequent.Destroy()
	ranked.Destroy()
	wc.destroy()

	log.Println(counter.LiveBytes(), "bytes left allocated")
}
