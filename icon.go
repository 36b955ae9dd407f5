package main

// Data is the tray icon (16x16 ICO).
var Data = []byte{
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x10, 0x10, 0x00, 0x00, 0x01, 0x00,
	0x20, 0x00, 0x68, 0x04, 0x00, 0x00, 0x16, 0x00, 0x00, 0x00, 0x28, 0x00,
	0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x01, 0x00,
	0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1e, 0x78,
	0xc8, 0xff, 0x1e, 0x78, 0xc8, 0xff, 0x1e, 0x78, 0xc8, 0xff, 0x1e, 0x78,
	0xc8, 0xff, 0x1e, 0x78, 0xc8, 0xff, 0x1e, 0x78, 0xc8, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0,
	0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x3c, 0xa0, 0xe6, 0xff, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x1e, 0x78, 0xc8, 0xff, 0x1e, 0x78, 0xc8, 0xff, 0x1e, 0x78,
	0xc8, 0xff, 0x1e, 0x78, 0xc8, 0xff, 0x1e, 0x78, 0xc8, 0xff, 0x1e, 0x78,
	0xc8, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
